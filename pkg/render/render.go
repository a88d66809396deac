package render

import (
	"bytes"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
)

type templateData struct {
	Env    map[string]string
	Params map[string]interface{}
}

// String renders text as a Go template. Templates have access to the sprig
// function map, the process environment as .Env and params as .Params.
// Text without template actions is returned as is.
func String(name, text string, params map[string]interface{}) (string, error) {
	if !strings.Contains(text, "{{") {
		return text, nil
	}

	tpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Option("missingkey=zero").Parse(text)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse template %q", name)
	}

	data := templateData{
		Env:    environ(),
		Params: params,
	}

	var out bytes.Buffer
	if err := tpl.Execute(&out, &data); err != nil {
		return "", errors.Wrapf(err, "failed to render template %q", name)
	}

	return out.String(), nil
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, e := range os.Environ() {
		e := strings.SplitN(e, "=", 2)
		if len(e) > 1 {
			env[e[0]] = e[1]
		}
	}
	return env
}
