package envmap

const cubeVertexShader = `
#version 410 core

layout(location = 0) in vec3 a_pos;

uniform mat4 u_view_matrix;
uniform mat4 u_projection_matrix;

out vec3 v_dir;

void main() {
	v_dir = a_pos;
	gl_Position = u_projection_matrix * u_view_matrix * vec4(a_pos, 1.0);
}
`

const equirectangularFragmentShader = `
#version 410 core

in vec3 v_dir;

uniform sampler2D u_env_map_sampler;

out vec4 f_color;

const vec2 INV_ATAN = vec2(0.1591, 0.3183);

vec2 sampleSpherical(vec3 dir) {
	vec2 uv = vec2(atan(dir.z, dir.x), asin(dir.y));
	return uv * INV_ATAN + 0.5;
}

void main() {
	vec2 uv = sampleSpherical(normalize(v_dir));
	f_color = vec4(texture(u_env_map_sampler, uv).rgb, 1.0);
}
`

const irradianceFragmentShader = `
#version 410 core

in vec3 v_dir;

uniform samplerCube u_env_map_sampler;

out vec4 f_color;

const float PI = 3.14159265359;

void main() {
	vec3 normal = normalize(v_dir);
	vec3 up = abs(normal.y) < 0.999 ? vec3(0.0, 1.0, 0.0) : vec3(1.0, 0.0, 0.0);
	vec3 right = normalize(cross(up, normal));
	up = normalize(cross(normal, right));

	vec3 irradiance = vec3(0.0);
	float samples = 0.0;
	const float delta = 0.025;

	for (float phi = 0.0; phi < 2.0 * PI; phi += delta) {
		for (float theta = 0.0; theta < 0.5 * PI; theta += delta) {
			vec3 tangent = vec3(sin(theta) * cos(phi), sin(theta) * sin(phi), cos(theta));
			vec3 dir = tangent.x * right + tangent.y * up + tangent.z * normal;

			irradiance += texture(u_env_map_sampler, dir).rgb * cos(theta) * sin(theta);
			samples++;
		}
	}

	f_color = vec4(PI * irradiance / samples, 1.0);
}
`

const hammersley = `
float radicalInverse(uint bits) {
	bits = (bits << 16u) | (bits >> 16u);
	bits = ((bits & 0x55555555u) << 1u) | ((bits & 0xAAAAAAAAu) >> 1u);
	bits = ((bits & 0x33333333u) << 2u) | ((bits & 0xCCCCCCCCu) >> 2u);
	bits = ((bits & 0x0F0F0F0Fu) << 4u) | ((bits & 0xF0F0F0F0u) >> 4u);
	bits = ((bits & 0x00FF00FFu) << 8u) | ((bits & 0xFF00FF00u) >> 8u);
	return float(bits) * 2.3283064365386963e-10;
}

vec2 hammersley(uint i, uint n) {
	return vec2(float(i) / float(n), radicalInverse(i));
}

vec3 importanceSampleGGX(vec2 xi, vec3 n, float roughness) {
	float a = roughness * roughness;

	float phi = 2.0 * PI * xi.x;
	float cosTheta = sqrt((1.0 - xi.y) / (1.0 + (a * a - 1.0) * xi.y));
	float sinTheta = sqrt(1.0 - cosTheta * cosTheta);

	vec3 h = vec3(cos(phi) * sinTheta, sin(phi) * sinTheta, cosTheta);

	vec3 up = abs(n.z) < 0.999 ? vec3(0.0, 0.0, 1.0) : vec3(1.0, 0.0, 0.0);
	vec3 tangent = normalize(cross(up, n));
	vec3 bitangent = cross(n, tangent);

	return normalize(tangent * h.x + bitangent * h.y + n * h.z);
}
`

const specularFragmentShader = `
#version 410 core

in vec3 v_dir;

uniform samplerCube u_env_map_sampler;
uniform float u_roughness;

out vec4 f_color;

const float PI = 3.14159265359;
const uint SAMPLE_COUNT = 1024u;
` + hammersley + `
void main() {
	vec3 n = normalize(v_dir);
	vec3 v = n;

	vec3 color = vec3(0.0);
	float weight = 0.0;

	for (uint i = 0u; i < SAMPLE_COUNT; ++i) {
		vec2 xi = hammersley(i, SAMPLE_COUNT);
		vec3 h = importanceSampleGGX(xi, n, u_roughness);
		vec3 l = normalize(2.0 * dot(v, h) * h - v);

		float ndotl = max(dot(n, l), 0.0);
		if (ndotl > 0.0) {
			color += texture(u_env_map_sampler, l).rgb * ndotl;
			weight += ndotl;
		}
	}

	f_color = vec4(color / weight, 1.0);
}
`

const quadVertexShader = `
#version 410 core

layout(location = 0) in vec3 a_pos;

out vec2 v_uv;

void main() {
	v_uv = a_pos.xy * 0.5 + 0.5;
	gl_Position = vec4(a_pos, 1.0);
}
`

const brdfFragmentShader = `
#version 410 core

in vec2 v_uv;

out vec2 f_color;

const float PI = 3.14159265359;
const uint SAMPLE_COUNT = 1024u;
` + hammersley + `
float geometrySchlickGGX(float ndotv, float roughness) {
	float k = (roughness * roughness) / 2.0;
	return ndotv / (ndotv * (1.0 - k) + k);
}

float geometrySmith(vec3 n, vec3 v, vec3 l, float roughness) {
	return geometrySchlickGGX(max(dot(n, v), 0.0), roughness) *
		geometrySchlickGGX(max(dot(n, l), 0.0), roughness);
}

vec2 integrateBRDF(float ndotv, float roughness) {
	vec3 v = vec3(sqrt(1.0 - ndotv * ndotv), 0.0, ndotv);
	vec3 n = vec3(0.0, 0.0, 1.0);

	float a = 0.0;
	float b = 0.0;

	for (uint i = 0u; i < SAMPLE_COUNT; ++i) {
		vec2 xi = hammersley(i, SAMPLE_COUNT);
		vec3 h = importanceSampleGGX(xi, n, roughness);
		vec3 l = normalize(2.0 * dot(v, h) * h - v);

		float ndotl = max(l.z, 0.0);
		float ndoth = max(h.z, 0.0);
		float vdoth = max(dot(v, h), 0.0);

		if (ndotl > 0.0) {
			float g = geometrySmith(n, v, l, roughness);
			float gvis = (g * vdoth) / (ndoth * ndotv);
			float fc = pow(1.0 - vdoth, 5.0);

			a += (1.0 - fc) * gvis;
			b += fc * gvis;
		}
	}

	return vec2(a, b) / float(SAMPLE_COUNT);
}

void main() {
	f_color = integrateBRDF(max(v_uv.x, 1e-4), v_uv.y);
}
`
