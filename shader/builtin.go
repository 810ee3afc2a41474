package shader

import (
	"fmt"
	"sort"
)

// ────────────────────────────────── flat ──────────────────────────────────
// Forwards positions untouched and paints everything red.

const flatVertexSource = `#version 410 core
layout (location = 0) in vec3 aPos;
void main() {
    gl_Position = vec4(aPos, 1.0);
}
`

const flatFragmentSource = `#version 410 core
out vec4 frag_color;
void main() {
    frag_color = vec4(1.0, 0.0, 0.0, 1.0);
}
`

// ────────────────────────────────── color ─────────────────────────────────

const colorVertexSource = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aCol;
out vec3 col;
void main() {
    col = aCol;
    gl_Position = vec4(aPos, 1.0);
}
`

const colorFragmentSource = `#version 410 core
in vec3 col;
out vec4 frag_color;
void main() {
    frag_color = vec4(col, 1.0);
}
`

// ───────────────────────────────── textured ───────────────────────────────

const texturedVertexSource = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aUV;
out vec2 uv;
uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
void main() {
    uv = aUV;
    gl_Position = projection * view * model * vec4(aPos, 1.0);
}
`

const texturedFragmentSource = `#version 410 core
in vec2 uv;
out vec4 frag_color;
uniform sampler2D texture0;
uniform sampler2D texture1;
uniform float mixAmount;
void main() {
    frag_color = mix(texture(texture0, uv), texture(texture1, uv), mixAmount);
}
`

var builtins = map[string][2]string{
	"flat":     {flatVertexSource, flatFragmentSource},
	"color":    {colorVertexSource, colorFragmentSource},
	"textured": {texturedVertexSource, texturedFragmentSource},
}

// Builtin returns the vertex and fragment sources of a built-in program.
func Builtin(name string) (vertex, fragment string, err error) {
	b, ok := builtins[name]
	if !ok {
		return "", "", fmt.Errorf("no built-in shader named %q", name)
	}
	return b[0], b[1], nil
}

func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
