// Package descriptor builds material and texture descriptors, validates
// their attributes against embedded JSON schemas, serializes them as XML and
// writes them without ever replacing an existing file.
package descriptor
