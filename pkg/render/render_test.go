package render_test

import (
	"testing"

	"github.com/harshx-2005/linkup-sub001/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringWithoutActionsIsUnchanged(t *testing.T) {
	out, err := render.String("plain", "https://example.com/?q={x}", nil)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/?q={x}", out)
}

func TestStringRendersEnvAndSprigFunctions(t *testing.T) {
	t.Setenv("LINKUP_RENDER_KEY", "abc")

	out, err := render.String("url", `key={{ .Env.LINKUP_RENDER_KEY }}&other={{ env "LINKUP_RENDER_UNSET" | default "YOUR_API_KEY" }}`, nil)

	require.NoError(t, err)
	assert.Equal(t, "key=abc&other=YOUR_API_KEY", out)
}

func TestStringRendersParams(t *testing.T) {
	out, err := render.String("payload", `{"text":{{ .Params.prompt | quote }}}`, map[string]interface{}{"prompt": "hi"})

	require.NoError(t, err)
	assert.Equal(t, `{"text":"hi"}`, out)
}

func TestStringReportsParseErrors(t *testing.T) {
	_, err := render.String("broken", "{{ .Env", nil)

	assert.ErrorContains(t, err, `failed to parse template "broken"`)
}
