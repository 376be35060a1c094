package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// nextIDExpr возвращает SQL-выражение следующего идентификатора коллекции:
// максимум существующих значений плюс один, для пустой таблицы — 1.
// Выражение встраивается прямо в INSERT, чтобы чтение максимума и вставка
// выполнялись одним оператором: два конкурентных создания не могут получить
// одинаковый id, первичный ключ служит страховкой.
func nextIDExpr(table, column string) string {
	return fmt.Sprintf("(SELECT COALESCE(MAX(%s), 0) + 1 FROM %s)", column, table)
}

// NextID вычисляет следующий идентификатор отдельным запросом. Результат
// устаревает сразу после чтения, поэтому создание записей использует
// nextIDExpr, а не эту функцию.
func NextID(ctx context.Context, db *sqlx.DB, table, column string) (int, error) {
	var id int

	query := fmt.Sprintf("SELECT COALESCE(MAX(%s), 0) + 1 FROM %s", column, table)

	err := db.GetContext(ctx, &id, query)
	if err != nil {
		return 0, fmt.Errorf("ошибка при вычислении следующего id для %s: %w", table, err)
	}

	return id, nil
}
