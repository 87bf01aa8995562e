package main

var vertexShader = `
#version 410 core

#define MAX_CLIPPING_PLANES 4

layout(location = 0) in vec3 a_pos;
layout(location = 1) in vec3 a_nor;
layout(location = 2) in vec2 a_tex;

uniform mat4 u_model_matrix;
uniform mat4 u_view_matrix;
uniform mat4 u_projection_matrix;
uniform mat3 u_nor_transform;

uniform bool u_plane_active[MAX_CLIPPING_PLANES];
uniform vec4 u_plane_equations[MAX_CLIPPING_PLANES];

out vec3 v_pos;
out vec3 v_nor;
out vec2 v_tex;

void main() {
	vec4 world_pos = u_model_matrix * vec4(a_pos, 1.0);

	for (int i = 0; i < MAX_CLIPPING_PLANES; ++i) {
		gl_ClipDistance[i] = u_plane_active[i] ? dot(world_pos, u_plane_equations[i]) : 1.0;
	}

	v_pos = world_pos.xyz;
	v_nor = normalize(u_nor_transform * a_nor);
	v_tex = a_tex;
	gl_Position = u_projection_matrix * u_view_matrix * world_pos;
}
`

var fragmentShader = `
#version 410 core

#define LAMBERT      0
#define HALF_LAMBERT 1
#define PHONG        2
#define BLINN_PHONG  3
#define BANDED       4
#define MINNAERT     5
#define OREN_NAYAR   6

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
uniform float u_roughness;
uniform int u_lighting_model;

out vec4 f_color;

void main() {
	vec3 albedo = texture(u_sampler, v_tex).rgb;

	vec3 n = normalize(gl_FrontFacing ? v_nor : -v_nor);
	vec3 l = normalize(-u_dir_light.direction);
	vec3 v = normalize(u_view_pos - v_pos);
	float ndotl = dot(n, l);

	vec3 diffuse = vec3(0.0);
	vec3 specular = vec3(0.0);

	switch (u_lighting_model) {
	case LAMBERT:
		diffuse = albedo * max(ndotl, 0.0);
		break;
	case HALF_LAMBERT: {
		float wrapped = ndotl * 0.5 + 0.5;
		diffuse = albedo * wrapped * wrapped;
		break;
	}
	case PHONG:
		diffuse = albedo * max(ndotl, 0.0);
		if (ndotl > 0.0)
		specular = vec3(pow(max(dot(reflect(-l, n), v), 0.0), u_shininess));
		break;
	case BLINN_PHONG:
		diffuse = albedo * max(ndotl, 0.0);
		if (ndotl > 0.0)
		specular = vec3(pow(max(dot(n, normalize(l + v)), 0.0), u_shininess));
		break;
	case BANDED:
		diffuse = albedo * floor(max(ndotl, 0.0) * 4.0) / 4.0;
		break;
	case MINNAERT: {
		float ndotv = max(dot(n, v), 0.0);
		diffuse = albedo * max(ndotl, 0.0) * pow(max(ndotl, 0.0) * ndotv, u_roughness);
		break;
	}
	case OREN_NAYAR: {
		float s2 = u_roughness * u_roughness;
		float a = 1.0 - 0.5 * s2 / (s2 + 0.33);
		float b = 0.45 * s2 / (s2 + 0.09);
		float nl = max(ndotl, 0.0);
		float nv = max(dot(n, v), 0.0);
		float theta_i = acos(nl);
		float theta_r = acos(nv);
		float gamma = max(dot(normalize(v - n * nv), normalize(l - n * nl)), 0.0);
		float alpha = max(theta_i, theta_r);
		float beta = min(theta_i, theta_r);
		diffuse = albedo * nl * (a + b * gamma * sin(alpha) * tan(beta));
		break;
	}
	}

	f_color = vec4((diffuse + specular) * u_dir_light.color, 1.0);
}
`
