package main

var vertexShader = `
#version 410 core

layout(location = 0) in vec2 a_pos;
layout(location = 1) in vec2 a_tex;

uniform mat4 u_projection;
uniform mat4 u_transform;
uniform float u_angle;

out vec2 v_tex;

void main() {
	mat2 rotate = mat2(
		vec2(cos(u_angle), sin(u_angle)),
		vec2(-sin(u_angle), cos(u_angle)));
	v_tex = rotate * a_tex;
	gl_Position = u_projection * u_transform * vec4(a_pos, 0.0, 1.0);
}
` + "\x00"

var fragmentShader = `
#version 410 core

in vec2 v_tex;

uniform vec4 u_color;
uniform bool u_has_color;
uniform sampler2D u_sampler;
uniform bool u_has_texture;

out vec4 f_color;

void main() {
	if (u_has_color && u_has_texture)
		f_color = u_color * texture(u_sampler, v_tex).rrra;
	else if (u_has_color)
		f_color = u_color;
	else if (u_has_texture)
		f_color = texture(u_sampler, v_tex).rrra;
	else
		f_color = vec4(0.0);
}
` + "\x00"
