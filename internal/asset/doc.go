// Package asset extracts descriptor names from raw asset sources: material
// names from Wavefront OBJ meshes and texture names from PNG file paths.
// Extraction never writes anything.
package asset
