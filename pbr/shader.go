package main

var vertexShader = `
#version 410 core

layout(location = 0) in vec3 a_pos;
layout(location = 1) in vec3 a_nor;
layout(location = 2) in vec2 a_tex;
layout(location = 3) in vec3 a_tan;

uniform mat4 u_model_matrix;
uniform mat4 u_view_matrix;
uniform mat4 u_projection_matrix;
uniform mat3 u_nor_transform;

out vec3 v_pos;
out vec2 v_tex;
out mat3 v_tbn;

void main() {
	vec4 world_pos = u_model_matrix * vec4(a_pos, 1.0);

	vec3 n = normalize(u_nor_transform * a_nor);
	vec3 t = normalize(u_nor_transform * a_tan);
	t = normalize(t - dot(t, n) * n);

	v_pos = world_pos.xyz;
	v_tex = a_tex;
	v_tbn = mat3(t, cross(n, t), n);
	gl_Position = u_projection_matrix * u_view_matrix * world_pos;
}
`

// fragmentHeader is shared by both lighting programs: inputs, lights,
// normal mapping and tone mapping.
var fragmentHeader = `
#version 410 core

in vec3 v_pos;
in vec2 v_tex;
in mat3 v_tbn;

struct AmbientLight {
	vec3 color;
};

struct DirectionalLight {
	vec3 direction;
	vec3 color;
};

uniform sampler2D u_color_sampler;
uniform sampler2D u_normal_sampler;

uniform AmbientLight u_amb_light;
uniform DirectionalLight u_dir_light;
uniform vec3 u_view_pos;
uniform bool u_bump_map_active;

uniform float u_gamma;
uniform float u_exposure;

out vec4 f_color;

vec3 surfaceNormal() {
	if (!u_bump_map_active)
		return normalize(v_tbn[2]);
	vec3 n = texture(u_normal_sampler, v_tex).rgb * 2.0 - 1.0;
	return normalize(v_tbn * n);
}

vec3 albedo() {
	return pow(texture(u_color_sampler, v_tex).rgb, vec3(u_gamma));
}

vec4 toneMap(vec3 color) {
	vec3 mapped = vec3(1.0) - exp(-color * u_exposure);
	return vec4(pow(mapped, vec3(1.0 / u_gamma)), 1.0);
}
`

var blinnPhongFragmentShader = fragmentHeader + `
uniform float u_shininess;

void main() {
	vec3 base = albedo();
	vec3 n = surfaceNormal();
	vec3 l = normalize(-u_dir_light.direction);
	vec3 v = normalize(u_view_pos - v_pos);

	float ndotl = max(dot(n, l), 0.0);
	float specular = 0.0;
	if (ndotl > 0.0)
		specular = pow(max(dot(n, normalize(l + v)), 0.0), u_shininess);

	vec3 color = u_amb_light.color * base + (base * ndotl + vec3(specular)) * u_dir_light.color;
	f_color = toneMap(color);
}
`

var standardFragmentShader = fragmentHeader + `
uniform bool u_has_metallic_map;
uniform sampler2D u_metallic_sampler;
uniform float u_metallic;

uniform bool u_has_roughness_map;
uniform sampler2D u_roughness_sampler;
uniform float u_roughness;

const float PI = 3.14159265359;

float distributionGGX(float ndoth, float roughness) {
	float a = roughness * roughness;
	float a2 = a * a;
	float d = ndoth * ndoth * (a2 - 1.0) + 1.0;
	return a2 / (PI * d * d);
}

float geometrySchlickGGX(float ndotx, float roughness) {
	float r = roughness + 1.0;
	float k = r * r / 8.0;
	return ndotx / (ndotx * (1.0 - k) + k);
}

float geometrySmith(float ndotv, float ndotl, float roughness) {
	return geometrySchlickGGX(ndotv, roughness) * geometrySchlickGGX(ndotl, roughness);
}

vec3 fresnelSchlick(float cos_theta, vec3 f0) {
	return f0 + (1.0 - f0) * pow(clamp(1.0 - cos_theta, 0.0, 1.0), 5.0);
}

void main() {
	vec3 base = albedo();
	float metallic = u_has_metallic_map ? texture(u_metallic_sampler, v_tex).r : u_metallic;
	float roughness = u_has_roughness_map ? texture(u_roughness_sampler, v_tex).r : u_roughness;
	roughness = max(roughness, 0.05);

	vec3 n = surfaceNormal();
	vec3 l = normalize(-u_dir_light.direction);
	vec3 v = normalize(u_view_pos - v_pos);
	vec3 h = normalize(l + v);

	float ndotl = max(dot(n, l), 0.0);
	float ndotv = max(dot(n, v), 0.0);

	vec3 f0 = mix(vec3(0.04), base, metallic);
	vec3 f = fresnelSchlick(max(dot(h, v), 0.0), f0);
	float d = distributionGGX(max(dot(n, h), 0.0), roughness);
	float g = geometrySmith(ndotv, ndotl, roughness);

	vec3 specular = d * g * f / max(4.0 * ndotv * ndotl, 0.001);
	vec3 kd = (vec3(1.0) - f) * (1.0 - metallic);

	vec3 color = u_amb_light.color * base + (kd * base / PI + specular) * u_dir_light.color * ndotl;
	f_color = toneMap(color);
}
`
