package gldevice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShaderSourcesTargetCoreProfile(t *testing.T) {
	for name, src := range map[string]string{
		"vertex":   vertexShaderSource,
		"fragment": fragmentShaderSource,
	} {
		assert.True(t, strings.HasPrefix(src, "#version 150\n"), "%s shader must start with the 3.2 core version line", name)
		assert.NotContains(t, src, "\x00", "%s shader source is terminated at compile time", name)
	}
}

func TestVertexShaderDeclaresBoundAttributes(t *testing.T) {
	for _, attr := range []string{"in vec2 a_position;", "in vec2 a_texcoord;", "in vec4 a_color;"} {
		assert.Contains(t, vertexShaderSource, attr)
	}
	assert.Contains(t, fragmentShaderSource, "in vec4 v_color;")
}
