package views

import (
	"html/template"
	"shrm-web/internal/pkg/constvars"
	"time"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"serviceTypeOptions": func() []constvars.Option { return constvars.ServiceTypeOptions },
		"sessionTypeOptions": func() []constvars.Option { return constvars.SessionTypeOptions },
		"reasonOptions":      func() []constvars.Option { return constvars.ReasonForCounselingOptions },
		"subjectOptions":     func() []constvars.Option { return constvars.ContactSubjectOptions },
		"timeOptions":        constvars.PreferredTimeOptions,
		"serviceLabel": func(value string) string {
			return constvars.OptionLabel(constvars.ServiceTypeOptions, value)
		},
		"sessionLabel": func(value string) string {
			return constvars.OptionLabel(constvars.SessionTypeOptions, value)
		},
		"reasonLabel": func(value string) string {
			return constvars.OptionLabel(constvars.ReasonForCounselingOptions, value)
		},
		"timeLabel": func(value string) string {
			return constvars.OptionLabel(constvars.PreferredTimeOptions(), value)
		},
		"today": func() string {
			return time.Now().Format(constvars.LayoutDateYYYYMMDD)
		},
		"deref": func(value *string) string {
			if value == nil {
				return ""
			}
			return *value
		},
		"year": func() int {
			return time.Now().Year()
		},
		"dict": dictFunc,
	}
}

// dictFunc builds a map from key/value pairs so a template can pass several
// values to a shared block: {{template "select" (dict "Name" "x" "Options" o)}}.
func dictFunc(values ...any) map[string]any {
	dict := make(map[string]any, len(values)/2)
	for i := 0; i+1 < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			continue
		}
		dict[key] = values[i+1]
	}
	return dict
}
