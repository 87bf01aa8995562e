package main

var geometryVertexShader = `
#version 410 core

layout(location = 0) in vec3 a_pos;
layout(location = 1) in vec3 a_nor;
layout(location = 2) in vec2 a_tex;
layout(location = 3) in vec3 a_tan;

uniform mat4 u_model_matrix;
uniform mat4 u_view_matrix;
uniform mat4 u_projection_matrix;
uniform mat3 u_nor_transform;
uniform float u_uv_multiplier;

out vec3 v_pos;
out vec2 v_tex;
out mat3 v_tbn;

void main() {
	vec4 world_pos = u_model_matrix * vec4(a_pos, 1.0);

	vec3 n = normalize(u_nor_transform * a_nor);
	vec3 t = normalize(u_nor_transform * a_tan);
	t = normalize(t - dot(t, n) * n);
	vec3 b = cross(n, t);

	v_pos = world_pos.xyz;
	v_tex = a_tex * u_uv_multiplier;
	v_tbn = mat3(t, b, n);
	gl_Position = u_projection_matrix * u_view_matrix * world_pos;
}
`

var geometryFragmentShader = `
#version 410 core

in vec3 v_pos;
in vec2 v_tex;
in mat3 v_tbn;

struct DirectionalLight {
	vec3 direction;
	vec3 color;
};

uniform sampler2D u_color_sampler;
uniform sampler2D u_normal_sampler;
uniform samplerCube u_cube_sampler;

uniform DirectionalLight u_dir_light;
uniform vec3 u_view_pos;
uniform float u_shininess;
uniform bool u_bump_map_active;

uniform float u_diffuse;
uniform float u_reflection;
uniform float u_refraction;

out vec4 f_color;

const float AIR_TO_GLASS = 1.0 / 1.52;

void main() {
	vec3 albedo = texture(u_color_sampler, v_tex).rgb;

	vec3 n = v_tbn[2];
	if (u_bump_map_active) {
		n = texture(u_normal_sampler, v_tex).rgb * 2.0 - 1.0;
		n = normalize(v_tbn * n);
	}

	vec3 l = normalize(-u_dir_light.direction);
	vec3 v = normalize(u_view_pos - v_pos);

	float ndotl = max(dot(n, l), 0.0);
	float specular = 0.0;
	if (ndotl > 0.0)
		specular = pow(max(dot(n, normalize(l + v)), 0.0), u_shininess);
	vec3 lit = (albedo * ndotl + vec3(specular)) * u_dir_light.color;

	vec3 reflected = texture(u_cube_sampler, reflect(-v, n)).rgb;
	vec3 refracted = texture(u_cube_sampler, refract(-v, n, AIR_TO_GLASS)).rgb;

	f_color = vec4(u_diffuse * lit + u_reflection * reflected + u_refraction * refracted, 1.0);
}
`

var skyboxVertexShader = `
#version 410 core

layout(location = 0) in vec3 a_pos;

uniform mat4 u_view_matrix;
uniform mat4 u_projection_matrix;

out vec3 v_dir;

void main() {
	v_dir = a_pos;
	vec4 pos = u_projection_matrix * u_view_matrix * vec4(a_pos, 1.0);
	gl_Position = pos.xyww;
}
`

var skyboxFragmentShader = `
#version 410 core

in vec3 v_dir;

uniform samplerCube u_cube_sampler;

out vec4 f_color;

void main() {
	f_color = vec4(texture(u_cube_sampler, v_dir).rgb, 1.0);
}
`
