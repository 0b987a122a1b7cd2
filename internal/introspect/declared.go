package introspect

import (
	"context"
	"strings"

	"github.com/yoshisuproject/mbgplug/internal/config"
	"github.com/yoshisuproject/mbgplug/internal/models"
)

// DeclaredIntrospector builds tables from the columns listed in the configuration
type DeclaredIntrospector struct {
	builder
}

// NewDeclaredIntrospector creates an introspector over declared columns
func NewDeclaredIntrospector(opts Options) *DeclaredIntrospector {
	return &DeclaredIntrospector{builder{opts: opts, resolver: NewJavaTypeResolver()}}
}

// Introspect converts the declared columns of table
func (d *DeclaredIntrospector) Introspect(ctx context.Context, table config.TableConfig) (*models.IntrospectedTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := make([]rawColumn, 0, len(table.Columns))
	seq := 0
	for _, c := range table.Columns {
		rc := rawColumn{
			name:     c.Name,
			jdbcType: strings.ToUpper(c.JDBCType),
			nullable: c.Nullable,
			remarks:  c.Remarks,
		}
		if rc.jdbcType == "" {
			rc.jdbcType = "VARCHAR"
		}
		if c.PrimaryKey {
			seq++
			rc.pkSeq = seq
		}
		raw = append(raw, rc)
	}
	return d.build(table, raw)
}
