package postgres

import sq "github.com/Masterminds/squirrel"

// Builder is the statement builder shared by repositories; it emits
// PostgreSQL $n placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
