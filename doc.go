/*
Command m3c works with robot programs written in the NTF text format.

Usage:

	m3c [flags] <command> [file ...]

With no files, the program is read from standard input. The commands are:

	check   decode each file, reporting diagnostics and an instruction count
	fmt     re-encode each file in canonical NTF; -w rewrites files in place
	asm     write a readable listing of each program
	grid    write a table of every occupied row, one token per column

Diagnostics are logged as warnings unless m3c.toml (or the file named by
-config) sets check.strict, which makes them errors. The exit status is 1
if any error was logged, and 2 for usage or output errors.

An example m3c.toml:

	[check]
	strict = true
	max-diagnostics = 20

	[output]
	color = "auto" # or "always", "never"
*/
package main
