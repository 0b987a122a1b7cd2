package plugins

import (
	"github.com/yoshisuproject/mbgplug/internal/config"
	"github.com/yoshisuproject/mbgplug/internal/models"
)

// PropSuppressJavaInterface keeps the serialVersionUID field but skips implementing Serializable
const PropSuppressJavaInterface = "suppressJavaInterface"

// SerializablePlugin makes model classes implement java.io.Serializable and gives
// them a serialVersionUID field
type SerializablePlugin struct {
	Adapter
	suppressInterface bool
}

// NewSerializablePlugin creates the plugin
func NewSerializablePlugin() *SerializablePlugin {
	return &SerializablePlugin{}
}

func (p *SerializablePlugin) Name() string {
	return "SerializablePlugin"
}

func (p *SerializablePlugin) Validate(*config.Warnings) bool {
	p.suppressInterface = config.IsTrue(p.Properties[PropSuppressJavaInterface])
	return true
}

func (p *SerializablePlugin) ModelBaseRecordClassGenerated(class *models.TopLevelClass, _ *models.IntrospectedTable) bool {
	p.makeSerializable(class)
	return true
}

func (p *SerializablePlugin) ModelRecordWithBLOBsClassGenerated(class *models.TopLevelClass, _ *models.IntrospectedTable) bool {
	p.makeSerializable(class)
	return true
}

func (p *SerializablePlugin) ModelPrimaryKeyClassGenerated(class *models.TopLevelClass, _ *models.IntrospectedTable) bool {
	p.makeSerializable(class)
	return true
}

func (p *SerializablePlugin) makeSerializable(class *models.TopLevelClass) {
	if !p.suppressInterface {
		class.AddSuperInterface(models.SerializableType)
		class.AddImportedType(models.SerializableType)
	}

	field := models.NewField(serialVersionUIDName, models.LongType)
	field.Visibility = models.VisibilityPrivate
	field.Static = true
	field.Final = true
	field.InitializationString = "1L"
	class.AddField(field)
}
