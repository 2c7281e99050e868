package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/webify-cli/webify/color"
	"github.com/webify-cli/webify/constant"
	"github.com/webify-cli/webify/style"
)

// Field is a registered configuration key with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env is the environment variable that overrides the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.Webify + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Parse converts command line values to the type of the default value.
func (f *Field) Parse(values []string) (any, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no value given for %s", f.Key)
	}

	switch f.Value.(type) {
	case string:
		return values[0], nil
	case int:
		n, err := strconv.Atoi(values[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer, got %q", f.Key, values[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(values[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects a boolean, got %q", f.Key, values[0])
		}
		return b, nil
	case []string:
		// "webify config set sources.default dm,yt" and "... dm yt" are equivalent
		return lo.FlatMap(values, func(v string, _ int) []string {
			return lo.Compact(strings.Split(v, ","))
		}), nil
	default:
		return nil, fmt.Errorf("%s has unsupported type %T", f.Key, f.Value)
	}
}

func (f *Field) typeName() string {
	return reflect.TypeOf(f.Value).String()
}

// MarshalJSON includes the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Env         string `json:"env"`
		Type        string `json:"type"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
	}{
		Key:         f.Key,
		Env:         f.Env(),
		Type:        f.typeName(),
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
	})
}

// Pretty renders the field for the terminal.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)("true")
		}
		return style.Fg(color.Red)("false")
	case string:
		return style.Fg(color.Yellow)(strconv.Quote(value))
	case []string:
		return style.Fg(color.Yellow)("[" + strings.Join(value, ", ") + "]")
	default:
		return fmt.Sprint(value)
	}
}

var prettyTemplate = lo.Must(template.New("field").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"key":    style.Fg(color.Purple),
	"label":  style.Fg(color.Blue),
	"hl":     highlight,
	"type":   func(f *Field) string { return f.typeName() },
	"actual": func(k string) any { return viper.Get(k) },
}).Parse(`{{ key .Key }} {{ faint (type .) }}
{{ faint .Description }}
{{ label "env" }}      {{ .Env }}
{{ label "value" }}    {{ hl (actual .Key) }}
{{ label "default" }}  {{ hl .Value }}`))
