package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jmoiron/sqlx"
)

// Tx - handle транзакции вызывающей стороны. *sqlx.Tx удовлетворяет интерфейсу.
type Tx interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Rebind(query string) string
}

// NotIn - значение условия where, исключающее перечисленные значения колонки
type NotIn []interface{}

// SyncManyToMany приводит строки связи, совпадающие с where, к набору newKeys:
// лишние ключи удаляются, недостающие вставляются строками из createData.
// Строки с уже присутствующими ключами не трогаются.
// Все запросы выполняются на tx; открытие и завершение транзакции - забота вызывающего.
func SyncManyToMany[K comparable](
	ctx context.Context,
	tx Tx,
	table string,
	where map[string]interface{},
	keyField string,
	newKeys []K,
	createData func(key K) map[string]interface{},
) error {
	whereSQL, whereArgs := buildWhere(where)

	selectQuery := fmt.Sprintf("SELECT %s FROM %s WHERE %s",
		quoteIdent(keyField), quoteIdent(table), whereSQL)
	selectQuery, selectArgs, err := sqlx.In(selectQuery, whereArgs...)
	if err != nil {
		return fmt.Errorf("build select for %s: %w", table, err)
	}

	var current []K
	if err := tx.SelectContext(ctx, &current, tx.Rebind(selectQuery), selectArgs...); err != nil {
		return fmt.Errorf("select current %s keys: %w", table, err)
	}

	inserts, deletes := DiffKeys(current, newKeys)

	if len(deletes) > 0 {
		deleteQuery := fmt.Sprintf("DELETE FROM %s WHERE %s AND %s IN (?)",
			quoteIdent(table), whereSQL, quoteIdent(keyField))
		args := append(append([]interface{}{}, whereArgs...), deletes)
		deleteQuery, args, err = sqlx.In(deleteQuery, args...)
		if err != nil {
			return fmt.Errorf("build delete for %s: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(deleteQuery), args...); err != nil {
			return fmt.Errorf("delete %s rows: %w", table, err)
		}
	}

	if len(inserts) > 0 {
		rows := make([]map[string]interface{}, 0, len(inserts))
		for _, key := range inserts {
			rows = append(rows, createData(key))
		}
		insertQuery, args, err := buildInsert(table, rows)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(insertQuery), args...); err != nil {
			return fmt.Errorf("insert %s rows: %w", table, err)
		}
	}

	return nil
}

// DiffKeys возвращает ключи для вставки (desired - current) и удаления (current - desired).
// Дубликаты схлопываются, порядок первого вхождения сохраняется.
func DiffKeys[K comparable](current, desired []K) (inserts, deletes []K) {
	currentSet := make(map[K]struct{}, len(current))
	for _, k := range current {
		currentSet[k] = struct{}{}
	}
	desiredSet := make(map[K]struct{}, len(desired))
	for _, k := range desired {
		if _, seen := desiredSet[k]; seen {
			continue
		}
		desiredSet[k] = struct{}{}
		if _, ok := currentSet[k]; !ok {
			inserts = append(inserts, k)
		}
	}

	deleted := make(map[K]struct{})
	for _, k := range current {
		if _, ok := desiredSet[k]; ok {
			continue
		}
		if _, seen := deleted[k]; seen {
			continue
		}
		deleted[k] = struct{}{}
		deletes = append(deletes, k)
	}

	return inserts, deletes
}

// buildWhere строит условие с bindvar "?" в порядке имён колонок
func buildWhere(where map[string]interface{}) (string, []interface{}) {
	if len(where) == 0 {
		return "TRUE", nil
	}

	columns := make([]string, 0, len(where))
	for col := range where {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	clauses := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, col := range columns {
		switch v := where[col].(type) {
		case NotIn:
			if len(v) == 0 {
				continue
			}
			clauses = append(clauses, quoteIdent(col)+" NOT IN (?)")
			args = append(args, []interface{}(v))
		case nil:
			clauses = append(clauses, quoteIdent(col)+" IS NULL")
		default:
			clauses = append(clauses, quoteIdent(col)+" = ?")
			args = append(args, v)
		}
	}

	if len(clauses) == 0 {
		return "TRUE", nil
	}
	return strings.Join(clauses, " AND "), args
}

// buildInsert строит многострочный INSERT; все строки должны иметь одинаковый набор колонок
func buildInsert(table string, rows []map[string]interface{}) (string, []interface{}, error) {
	columns := make([]string, 0, len(rows[0]))
	for col := range rows[0] {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = quoteIdent(col)
	}

	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ") + ")"
	values := make([]string, 0, len(rows))
	args := make([]interface{}, 0, len(rows)*len(columns))
	for i, row := range rows {
		if len(row) != len(columns) {
			return "", nil, fmt.Errorf("insert %s: row %d has %d columns, want %d", table, i, len(row), len(columns))
		}
		for _, col := range columns {
			v, ok := row[col]
			if !ok {
				return "", nil, fmt.Errorf("insert %s: row %d is missing column %q", table, i, col)
			}
			args = append(args, v)
		}
		values = append(values, placeholder)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		quoteIdent(table), strings.Join(quoted, ", "), strings.Join(values, ", "))
	return query, args, nil
}

// quoteIdent экранирует имя (допускается schema.table)
func quoteIdent(name string) string {
	return pgx.Identifier(strings.Split(name, ".")).Sanitize()
}
