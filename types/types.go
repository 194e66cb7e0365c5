// Package types defines small, dependency-free enums and constraints shared across the
// polyshell module: the numeric constraint used by generic helpers, the three-point
// orientation classification used by the geometry and hull packages, and the reduction
// Mode/Method enums used by the dispatcher and reducer packages.
//
// # Usage
//
// This package exists so that leaf packages (geometry, hull, reducer and its
// sub-packages) can refer to a shared vocabulary without importing each other.
package types
