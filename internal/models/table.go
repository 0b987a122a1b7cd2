package models

import (
	"fmt"
	"strings"
)

// TargetRuntime is the code-generation convention a context targets
type TargetRuntime int

const (
	TargetRuntimeMyBatis3 TargetRuntime = iota
	TargetRuntimeMyBatis3Simple
	TargetRuntimeMyBatis3DynamicSQL
)

// String returns the configuration name of the runtime
func (r TargetRuntime) String() string {
	switch r {
	case TargetRuntimeMyBatis3Simple:
		return "MyBatis3Simple"
	case TargetRuntimeMyBatis3DynamicSQL:
		return "MyBatis3DynamicSql"
	default:
		return "MyBatis3"
	}
}

// PrefersAnnotations reports whether generated members are documented with
// @Generated annotations instead of javadoc comments
func (r TargetRuntime) PrefersAnnotations() bool {
	return r == TargetRuntimeMyBatis3DynamicSQL
}

// SupportsExampleMethods reports whether the runtime generates *ByExample methods
func (r TargetRuntime) SupportsExampleMethods() bool {
	return r != TargetRuntimeMyBatis3Simple
}

// ParseTargetRuntime converts a configuration value to a TargetRuntime
func ParseTargetRuntime(s string) (TargetRuntime, error) {
	switch s {
	case "", "MyBatis3":
		return TargetRuntimeMyBatis3, nil
	case "MyBatis3Simple":
		return TargetRuntimeMyBatis3Simple, nil
	case "MyBatis3DynamicSql":
		return TargetRuntimeMyBatis3DynamicSQL, nil
	default:
		return 0, fmt.Errorf("unknown target runtime: %s", s)
	}
}

// ModelType decides how columns are split across model classes
type ModelType int

const (
	ModelTypeConditional ModelType = iota
	ModelTypeFlat
	ModelTypeHierarchical
)

// String returns the configuration name of the model type
func (m ModelType) String() string {
	switch m {
	case ModelTypeFlat:
		return "flat"
	case ModelTypeHierarchical:
		return "hierarchical"
	default:
		return "conditional"
	}
}

// ParseModelType converts a configuration value to a ModelType
func ParseModelType(s string) (ModelType, error) {
	switch strings.ToLower(s) {
	case "", "conditional":
		return ModelTypeConditional, nil
	case "flat":
		return ModelTypeFlat, nil
	case "hierarchical":
		return ModelTypeHierarchical, nil
	default:
		return 0, fmt.Errorf("unknown model type: %s", s)
	}
}

// blobJDBCTypes are the JDBC types whose columns are generated into the
// record-with-BLOBs class
var blobJDBCTypes = map[string]bool{
	"BINARY":        true,
	"BLOB":          true,
	"CLOB":          true,
	"LONGNVARCHAR":  true,
	"LONGVARBINARY": true,
	"LONGVARCHAR":   true,
	"NCLOB":         true,
	"VARBINARY":     true,
}

// Column is the introspected metadata of one table column
type Column struct {
	ActualName   string        // column name in the database
	JDBCType     string        // upper-case JDBC type name, e.g. VARCHAR
	JavaType     TypeReference // resolved Java type
	JavaProperty string        // Java property name, e.g. userName
	Nullable     bool
	PrimaryKey   bool
	Remarks      string
}

// IsBLOB reports whether the column holds large-object data
func (c Column) IsBLOB() bool {
	return blobJDBCTypes[strings.ToUpper(c.JDBCType)]
}

// FullyQualifiedTable identifies a table in the database
type FullyQualifiedTable struct {
	Catalog string
	Schema  string
	Name    string
}

// String returns the dotted table name
func (t FullyQualifiedTable) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{t.Catalog, t.Schema, t.Name} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}

// IntrospectedTable is the table-introspection context handed to plugins with every
// generation event. It carries the table identity, its columns and the target runtime.
type IntrospectedTable struct {
	Table            FullyQualifiedTable
	Remarks          string
	TargetRuntime    TargetRuntime
	ModelType        ModelType
	DomainObjectName string
	ModelPackage     string
	ClientPackage    string

	PrimaryKeyColumns []Column
	BaseColumns       []Column
	BLOBColumns       []Column
}

// AddColumn files c under the primary key, BLOB or base column list
func (t *IntrospectedTable) AddColumn(c Column) {
	switch {
	case c.PrimaryKey:
		t.PrimaryKeyColumns = append(t.PrimaryKeyColumns, c)
	case c.IsBLOB():
		t.BLOBColumns = append(t.BLOBColumns, c)
	default:
		t.BaseColumns = append(t.BaseColumns, c)
	}
}

// AllColumns returns primary key, base and BLOB columns in that order
func (t *IntrospectedTable) AllColumns() []Column {
	out := make([]Column, 0, len(t.PrimaryKeyColumns)+len(t.BaseColumns)+len(t.BLOBColumns))
	out = append(out, t.PrimaryKeyColumns...)
	out = append(out, t.BaseColumns...)
	return append(out, t.BLOBColumns...)
}

// NonBLOBColumns returns primary key and base columns
func (t *IntrospectedTable) NonBLOBColumns() []Column {
	out := make([]Column, 0, len(t.PrimaryKeyColumns)+len(t.BaseColumns))
	out = append(out, t.PrimaryKeyColumns...)
	return append(out, t.BaseColumns...)
}

// HasPrimaryKeyColumns reports whether the table declares a primary key
func (t *IntrospectedTable) HasPrimaryKeyColumns() bool {
	return len(t.PrimaryKeyColumns) > 0
}

// HasBLOBColumns reports whether the table has large-object columns
func (t *IntrospectedTable) HasBLOBColumns() bool {
	return len(t.BLOBColumns) > 0
}

// GeneratesPrimaryKeyClass reports whether a separate key class is generated
func (t *IntrospectedTable) GeneratesPrimaryKeyClass() bool {
	switch t.ModelType {
	case ModelTypeHierarchical:
		return t.HasPrimaryKeyColumns()
	case ModelTypeConditional:
		return len(t.PrimaryKeyColumns) > 1
	default:
		return false
	}
}

// GeneratesBaseRecordClass reports whether a base record class is generated
func (t *IntrospectedTable) GeneratesBaseRecordClass() bool {
	if t.ModelType != ModelTypeHierarchical {
		return true
	}
	return len(t.BaseColumns) > 0 || !t.HasPrimaryKeyColumns()
}

// GeneratesRecordWithBLOBsClass reports whether a separate BLOB record class is generated
func (t *IntrospectedTable) GeneratesRecordWithBLOBsClass() bool {
	return t.ModelType != ModelTypeFlat && t.HasBLOBColumns()
}

// BaseRecordType is the type of the base record class
func (t *IntrospectedTable) BaseRecordType() TypeReference {
	return t.modelType(t.DomainObjectName)
}

// PrimaryKeyType is the type of the primary key class
func (t *IntrospectedTable) PrimaryKeyType() TypeReference {
	return t.modelType(t.DomainObjectName + "Key")
}

// RecordWithBLOBsType is the type of the record-with-BLOBs class
func (t *IntrospectedTable) RecordWithBLOBsType() TypeReference {
	return t.modelType(t.DomainObjectName + "WithBLOBs")
}

// ExampleType is the type of the criteria class used by *ByExample methods
func (t *IntrospectedTable) ExampleType() TypeReference {
	return t.modelType(t.DomainObjectName + "Example")
}

// MapperType is the type of the client interface
func (t *IntrospectedTable) MapperType() TypeReference {
	return qualified(t.ClientPackage, t.DomainObjectName+"Mapper")
}

// RichestRecordType is the model type holding every column of a row
func (t *IntrospectedTable) RichestRecordType() TypeReference {
	switch {
	case t.GeneratesRecordWithBLOBsClass():
		return t.RecordWithBLOBsType()
	case t.GeneratesBaseRecordClass():
		return t.BaseRecordType()
	default:
		return t.PrimaryKeyType()
	}
}

func (t *IntrospectedTable) modelType(name string) TypeReference {
	return qualified(t.ModelPackage, name)
}

func qualified(pkg, name string) TypeReference {
	if pkg == "" {
		return NewTypeReference(name)
	}
	return NewTypeReference(pkg + "." + name)
}
