package comments

import (
	"github.com/yoshisuproject/mbgplug/internal/config"
	"github.com/yoshisuproject/mbgplug/internal/models"
)

// Call is one request received by a Recorder
type Call struct {
	Kind   string // "comment", "annotation", "class", "field" or "file"
	Method *models.Method
	Table  *models.IntrospectedTable
}

// Recorder is a CommentGenerator that records requests without writing anything.
// Plugin tests use it to observe which documentation convention was chosen.
type Recorder struct {
	Properties config.Properties
	Calls      []Call
}

var _ CommentGenerator = (*Recorder)(nil)

func (r *Recorder) AddConfigurationProperties(props config.Properties) {
	r.Properties = props.Clone()
}

func (r *Recorder) AddGeneralMethodComment(method *models.Method, table *models.IntrospectedTable) {
	r.Calls = append(r.Calls, Call{Kind: "comment", Method: method, Table: table})
}

func (r *Recorder) AddGeneralMethodAnnotation(method *models.Method, table *models.IntrospectedTable, imports *models.ImportSet) {
	r.Calls = append(r.Calls, Call{Kind: "annotation", Method: method, Table: table})
}

func (r *Recorder) AddModelClassComment(class *models.TopLevelClass, table *models.IntrospectedTable) {
	r.Calls = append(r.Calls, Call{Kind: "class", Table: table})
}

func (r *Recorder) AddFieldComment(field *models.Field, table *models.IntrospectedTable, column models.Column) {
	r.Calls = append(r.Calls, Call{Kind: "field", Table: table})
}

func (r *Recorder) AddJavaFileComment(lines *[]string) {
	r.Calls = append(r.Calls, Call{Kind: "file"})
}

// CallsOf returns the recorded calls of the given kind
func (r *Recorder) CallsOf(kind string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}
