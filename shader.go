package main

var vertexShader = `
#version 410 core

layout(location = 0) in vec3 a_pos;
layout(location = 1) in vec3 a_nor;
layout(location = 2) in vec2 a_tex;
layout(location = 3) in vec3 a_tan;

uniform mat4 u_model_matrix;
uniform mat4 u_pv_matrix;
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
	gl_Position = u_pv_matrix * world_pos;
}
`

var fragmentShader = `
#version 410 core

in vec3 v_pos;
in vec2 v_tex;
in mat3 v_tbn;

uniform vec3 u_view_pos;

uniform samplerCube u_irradiance_sampler;
uniform samplerCube u_specular_sampler;
uniform sampler2D u_brdf_lut_sampler;

uniform bool u_has_normal_map;
uniform bool u_has_ao_map;
uniform bool u_has_metallic_map;
uniform bool u_has_roughness_map;

uniform sampler2D u_albedo_sampler;
uniform sampler2D u_normal_sampler;
uniform sampler2D u_ao_sampler;
uniform sampler2D u_metallic_sampler;
uniform sampler2D u_roughness_sampler;

uniform float u_metallic;
uniform float u_roughness;

uniform float u_gamma;
uniform float u_exposure;

out vec4 f_color;

vec3 fresnelSchlickRoughness(float cos_theta, vec3 f0, float roughness) {
	return f0 + (max(vec3(1.0 - roughness), f0) - f0) * pow(clamp(1.0 - cos_theta, 0.0, 1.0), 5.0);
}

void main() {
	vec3 albedo = pow(texture(u_albedo_sampler, v_tex).rgb, vec3(u_gamma));
	float ao = u_has_ao_map ? texture(u_ao_sampler, v_tex).r : 1.0;
	float metallic = u_has_metallic_map ? texture(u_metallic_sampler, v_tex).r : u_metallic;
	float roughness = u_has_roughness_map ? texture(u_roughness_sampler, v_tex).r : u_roughness;

	vec3 n = normalize(v_tbn[2]);
	if (u_has_normal_map) {
		vec3 tangent_normal = texture(u_normal_sampler, v_tex).rgb * 2.0 - 1.0;
		n = normalize(v_tbn * tangent_normal);
	}
	vec3 v = normalize(u_view_pos - v_pos);
	vec3 r = reflect(-v, n);
	float ndotv = max(dot(n, v), 0.0);

	vec3 f0 = mix(vec3(0.04), albedo, metallic);
	vec3 f = fresnelSchlickRoughness(ndotv, f0, roughness);
	vec3 kd = (vec3(1.0) - f) * (1.0 - metallic);

	vec3 diffuse = texture(u_irradiance_sampler, n).rgb * albedo;

	float max_lod = float(textureQueryLevels(u_specular_sampler) - 1);
	vec3 prefiltered = textureLod(u_specular_sampler, r, roughness * max_lod).rgb;
	vec2 brdf = texture(u_brdf_lut_sampler, vec2(ndotv, roughness)).rg;
	vec3 specular = prefiltered * (f * brdf.x + brdf.y);

	vec3 color = (kd * diffuse + specular) * ao;

	vec3 mapped = vec3(1.0) - exp(-color * u_exposure);
	f_color = vec4(pow(mapped, vec3(1.0 / u_gamma)), 1.0);
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
uniform float u_mipmap_level;
uniform float u_gamma;
uniform float u_exposure;

out vec4 f_color;

void main() {
	vec3 color = textureLod(u_cube_sampler, v_dir, u_mipmap_level).rgb;
	vec3 mapped = vec3(1.0) - exp(-color * u_exposure);
	f_color = vec4(pow(mapped, vec3(1.0 / u_gamma)), 1.0);
}
`
