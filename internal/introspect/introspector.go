package introspect

import (
	"context"
	"math"
	"sort"

	"github.com/yoshisuproject/mbgplug/internal/config"
	"github.com/yoshisuproject/mbgplug/internal/errors"
	"github.com/yoshisuproject/mbgplug/internal/models"
	"github.com/yoshisuproject/mbgplug/internal/typeparser"
)

// Introspector reads the metadata of one configured table
type Introspector interface {
	Introspect(ctx context.Context, table config.TableConfig) (*models.IntrospectedTable, error)
}

// Options are the context-wide settings applied to every introspected table
type Options struct {
	TargetRuntime    models.TargetRuntime
	DefaultModelType models.ModelType
	ModelPackage     string
	ClientPackage    string
}

// OptionsFromContext derives Options from a configuration context
func OptionsFromContext(ctx config.ContextConfig) (Options, error) {
	runtime, err := models.ParseTargetRuntime(ctx.TargetRuntime)
	if err != nil {
		return Options{}, errors.Wrap(errors.ConfigurationErrorCode, "invalid targetRuntime", err)
	}
	modelType, err := models.ParseModelType(ctx.DefaultModelType)
	if err != nil {
		return Options{}, errors.Wrap(errors.ConfigurationErrorCode, "invalid defaultModelType", err)
	}
	return Options{
		TargetRuntime:    runtime,
		DefaultModelType: modelType,
		ModelPackage:     ctx.ModelGenerator.TargetPackage,
		ClientPackage:    ctx.ClientGenerator.TargetPackage,
	}, nil
}

// rawColumn is a column as read from the source, before configuration is applied
type rawColumn struct {
	name     string
	jdbcType string
	nullable bool
	pkSeq    int // 1-based position in the primary key, 0 when not a key column
	remarks  string
}

// builder turns raw columns into an IntrospectedTable
type builder struct {
	opts     Options
	resolver *JavaTypeResolver
}

func (b builder) build(tc config.TableConfig, raw []rawColumn) (*models.IntrospectedTable, error) {
	modelType := b.opts.DefaultModelType
	if tc.ModelType != "" {
		mt, err := models.ParseModelType(tc.ModelType)
		if err != nil {
			return nil, errors.WrapIntrospectionError(tc.TableName, err)
		}
		modelType = mt
	}

	domainName := tc.DomainObjectName
	if domainName == "" {
		domainName = CamelCase(tc.TableName, true)
	}

	table := &models.IntrospectedTable{
		Table:            models.FullyQualifiedTable{Catalog: tc.Catalog, Schema: tc.Schema, Name: tc.TableName},
		Remarks:          tc.Remarks,
		TargetRuntime:    b.opts.TargetRuntime,
		ModelType:        modelType,
		DomainObjectName: domainName,
		ModelPackage:     b.opts.ModelPackage,
		ClientPackage:    b.opts.ClientPackage,
	}

	// key columns follow their key order, the rest keep declaration order
	sort.SliceStable(raw, func(i, j int) bool {
		return keyOrder(raw[i]) < keyOrder(raw[j])
	})

	for _, rc := range raw {
		if tc.IsIgnored(rc.name) {
			continue
		}
		column, err := b.column(tc, rc)
		if err != nil {
			return nil, err
		}
		table.AddColumn(column)
	}

	if len(table.AllColumns()) == 0 {
		return nil, errors.Newf(errors.IntrospectionErrorCode, "table '%s' has no columns to generate", tc.TableName).
			WithContext("table", tc.TableName).
			WithSuggestion("Check ignoredColumns and the table name")
	}
	return table, nil
}

func keyOrder(rc rawColumn) int {
	if rc.pkSeq == 0 {
		return math.MaxInt
	}
	return rc.pkSeq
}

func (b builder) column(tc config.TableConfig, rc rawColumn) (models.Column, error) {
	column := models.Column{
		ActualName:   rc.name,
		JDBCType:     rc.jdbcType,
		JavaProperty: CamelCase(rc.name, false),
		Nullable:     rc.nullable,
		PrimaryKey:   rc.pkSeq > 0,
		Remarks:      rc.remarks,
	}

	javaType := ""
	if override, ok := tc.Override(rc.name); ok {
		if override.JDBCType != "" {
			column.JDBCType = override.JDBCType
		}
		if override.Property != "" {
			column.JavaProperty = override.Property
		}
		javaType = override.JavaType
	}

	if javaType == "" {
		column.JavaType = b.resolver.Resolve(column.JDBCType)
		return column, nil
	}
	parsed, err := typeparser.Parse(javaType)
	if err != nil {
		return models.Column{}, errors.WrapIntrospectionError(tc.TableName, err).
			WithContext("column", rc.name)
	}
	column.JavaType = parsed
	return column, nil
}
