package generator

import (
	"context"

	"github.com/yoshisuproject/mbgplug/internal/config"
	"github.com/yoshisuproject/mbgplug/internal/models"
)

// SourceRenderer renders structural descriptors to Java source text
type SourceRenderer interface {
	RenderInterface(iface *models.Interface) (string, error)
	RenderClass(class *models.TopLevelClass) (string, error)
}

// TableSource provides the introspected metadata of configured tables
type TableSource interface {
	Introspect(ctx context.Context, table config.TableConfig) (*models.IntrospectedTable, error)
}
