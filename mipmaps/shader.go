package main

var vertexShader = `
#version 410 core

layout(location = 0) in vec3 a_pos;
layout(location = 1) in vec3 a_nor;
layout(location = 2) in vec2 a_tex;

uniform mat4 u_model_matrix;
uniform mat4 u_view_matrix;
uniform mat4 u_projection_matrix;
uniform mat3 u_nor_transform;
uniform float u_uv_multiplier;

out vec3 v_pos;
out vec3 v_nor;
out vec2 v_tex;

void main() {
	vec4 world_pos = u_model_matrix * vec4(a_pos, 1.0);
	v_pos = world_pos.xyz;
	v_nor = normalize(u_nor_transform * a_nor);
	v_tex = a_tex * u_uv_multiplier;
	gl_Position = u_projection_matrix * u_view_matrix * world_pos;
}
`

var fragmentShader = `
#version 410 core

in vec3 v_pos;
in vec3 v_nor;
in vec2 v_tex;

struct DirectionalLight {
	vec3 direction;
	vec3 color;
};

uniform sampler2D u_sampler;
uniform DirectionalLight u_dir_light;
uniform vec3 u_view_pos;
uniform float u_shininess;
uniform bool u_has_3_channels;

out vec4 f_color;

void main() {
	vec3 albedo = u_has_3_channels
		? texture(u_sampler, v_tex).rgb
		: texture(u_sampler, v_tex).rrr;

	vec3 n = normalize(v_nor);
	vec3 l = normalize(-u_dir_light.direction);
	vec3 v = normalize(u_view_pos - v_pos);

	float diffuse = max(dot(n, l), 0.0);
	float specular = 0.0;
	if (diffuse > 0.0)
		specular = pow(max(dot(n, normalize(l + v)), 0.0), u_shininess);

	vec3 ambient = 0.2 * albedo;
	f_color = vec4(ambient + (albedo * diffuse + vec3(specular)) * u_dir_light.color, 1.0);
}
`
