// Package workspace resolves the libs-for-android working copy and the fixed
// layout the maintenance tools operate on (tools/, bin/, demos/, tests/libs/,
// local.properties, build.xml). It also provides the hidden-entry filter shared
// by every directory enumeration.
package workspace
