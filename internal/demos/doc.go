// Package demos runs one shell command in every demo project of the
// workspace and reports which demos succeeded.
package demos
