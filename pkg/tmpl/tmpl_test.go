package tmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		data    any
		want    string
		wantErr bool
	}{
		{
			name: "simple substitution",
			tmpl: "hello {{ .Name }}",
			data: map[string]string{"Name": "world"},
			want: "hello world",
		},
		{
			name: "struct data",
			tmpl: "{{ .Name }} at {{ .Max }}",
			data: struct {
				Name string
				Max  int
			}{Name: "hashtags", Max: 5},
			want: "hashtags at 5",
		},
		{
			name: "no variables",
			tmpl: "static string",
			data: nil,
			want: "static string",
		},
		{
			name:    "missing key errors",
			tmpl:    "{{ .Missing }}",
			data:    map[string]string{"Name": "test"},
			wantErr: true,
		},
		{
			name:    "invalid template syntax",
			tmpl:    "{{ .Name }",
			data:    map[string]string{"Name": "test"},
			wantErr: true,
		},
		{
			name: "join",
			tmpl: `{{ join .Tags " " }}`,
			data: map[string][]string{"Tags": {"#a", "#b"}},
			want: "#a #b",
		},
		{
			name: "code span",
			tmpl: "{{ .Ext | code }}",
			data: map[string]string{"Ext": ".png"},
			want: "`.png`",
		},
		{
			name: "code span containing a backtick",
			tmpl: "{{ .Ext | code }}",
			data: map[string]string{"Ext": "a`b"},
			want: "``a`b``",
		},
		{
			name: "code span starting with a backtick",
			tmpl: "{{ .Ext | code }}",
			data: map[string]string{"Ext": "`x"},
			want: "`` `x ``",
		},
		{
			name: "codes",
			tmpl: `{{ codes .Exts ", " }}`,
			data: map[string][]string{"Exts": {".jpg", ".png"}},
			want: "`.jpg`, `.png`",
		},
		{
			name: "shq function with spaces",
			tmpl: "echo {{ .Desc | shq }}",
			data: map[string]string{"Desc": `say "hello"`},
			want: `echo 'say "hello"'`,
		},
		{
			name: "shq function with empty string",
			tmpl: "echo {{ .Desc | shq }}",
			data: map[string]string{"Desc": ""},
			want: "echo ''",
		},
		{
			name: "shq function with quote and special chars",
			tmpl: "echo {{ .Desc | shq }}",
			data: map[string]string{"Desc": "it's $(whoami)"},
			want: `echo 'it'\''s $(whoami)'`,
		},
		{
			name: "upper",
			tmpl: "{{ upper .Locale }}",
			data: map[string]string{"Locale": "ru"},
			want: "RU",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheck(t *testing.T) {
	require.NoError(t, Check("notify {{ .File | shq }}"))
	require.Error(t, Check("notify {{ .File "))
	require.Error(t, Check("{{ unknownFunc }}"))
}
