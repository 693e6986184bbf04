package persistence

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	currencySearchPrefix = "currency_"
	amountSortPrefix     = "amount_"
)

// sortExpr is an ORDER BY expression together with its bind variables.
type sortExpr struct {
	sql  string
	vars []any
}

// column returns a quoted "table"."column" reference.
func column(table, name string) string {
	return pq.QuoteIdentifier(table) + "." + pq.QuoteIdentifier(name)
}

// currencyFilter extracts XXX from a "currency_XXX" search term.
func currencyFilter(term string) (string, bool) {
	return suffixAfter(term, currencySearchPrefix)
}

// amountSortCurrency extracts XXX from an "amount_xxx" sort column.
func amountSortCurrency(sortColumn string) (string, bool) {
	return suffixAfter(sortColumn, amountSortPrefix)
}

func suffixAfter(value, prefix string) (string, bool) {
	if len(value) <= len(prefix) || !strings.EqualFold(value[:len(prefix)], prefix) {
		return "", false
	}
	return strings.ToUpper(value[len(prefix):]), true
}

// applyTextSearch adds a case-insensitive substring match on name or description.
func applyTextSearch(query *gorm.DB, table, term string) *gorm.DB {
	if term == "" {
		return query
	}
	pattern := "%" + strings.ToLower(term) + "%"
	return query.Where(
		fmt.Sprintf("(LOWER(%s) LIKE ? OR LOWER(%s) LIKE ?)", column(table, "name"), column(table, "description")),
		pattern, pattern,
	)
}

// orderBy sorts by expr and breaks ties by creation order.
// A nil expr yields the creation order alone.
func orderBy(table string, expr *sortExpr, desc bool) clause.OrderBy {
	tiebreak := column(table, "created_at") + " ASC, " + column(table, "id") + " ASC"
	if expr == nil {
		return clause.OrderBy{Expression: clause.Expr{SQL: tiebreak, WithoutParentheses: true}}
	}

	direction := " ASC"
	if desc {
		direction = " DESC"
	}
	return clause.OrderBy{Expression: clause.Expr{
		SQL:                expr.sql + direction + ", " + tiebreak,
		Vars:               expr.vars,
		WithoutParentheses: true,
	}}
}

// itemTotalsSum sums price * quantity of the items reachable through joins,
// optionally restricted to one currency.
func itemTotalsSum(joins, where, currency string) *sortExpr {
	sql := "(SELECT COALESCE(SUM(bi.amount * bi.quantity), 0) " + joins + " WHERE " + where
	if currency == "" {
		return &sortExpr{sql: sql + ")"}
	}
	return &sortExpr{sql: sql + " AND bi.currency = ?)", vars: []any{currency}}
}
