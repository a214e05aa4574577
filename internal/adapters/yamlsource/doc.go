/*
Package yamlsource loads argument definitions from YAML files.

A file is a list of records:

	- id: verbose
	  long: verbose
	  short: v
	  aliases: [debug]
	- long: output
	  short: o
	  takes_value: true
*/
package yamlsource
