package template_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xy-planning-network/connect/http/template"
	tt "github.com/xy-planning-network/connect/http/template/templatetest"
)

func TestParse(t *testing.T) {
	tcs := []struct {
		name   string
		files  []string
		err    error
		expect string
	}{
		{"Nil", nil, template.ErrNoFiles, ""},
		{"Empty-String", []string{""}, template.ErrNoFiles, ""},
		{"Not-Empty-File", []string{"", "hello.tmpl"}, nil, "hello"},
		{"Fallback-To-Package", []string{"tmpl/error.tmpl"}, nil, "status-message"},
	}

	fs := tt.NewMockFS(
		tt.NewMockFile("hello.tmpl", []byte("hello")),
	)

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			p := template.NewParser(template.WithFS(fs))

			// Act
			tmpl, err := p.Parse(tc.files...)

			// Assert
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.Nil(t, tmpl)
				return
			}

			require.NoError(t, err)
			b := new(bytes.Buffer)
			require.NoError(t, tmpl.Execute(b, map[string]any{"Contact": "x"}))
			require.Contains(t, b.String(), tc.expect)
		})
	}
}

func TestParseMissingFile(t *testing.T) {
	// Arrange
	p := tt.NewParser()

	// Act
	tmpl, err := p.Parse("missing.tmpl")

	// Assert
	require.Error(t, err)
	require.Nil(t, tmpl)
}
