// Package catalog loads and validates node-kind definitions.
//
// A node kind is the contract the host engine publishes for one
// operation: its ordered, typed input slots, its ordered, typed output
// slots, and the configuration attributes it accepts. Kinds are
// declared in HCL manifests:
//
//	node "math" {
//	  description = "Scalar math with a selectable operation."
//
//	  input "value"   { type = float }
//	  input "value_2" { type = float }
//	  output "value"  { type = float }
//
//	  attr "operation" {
//	    options = ["ADD", "SUBTRACT", "MULTIPLY"]
//	    default = "ADD"
//	  }
//	}
//
// By defining a clear, typed schema per kind, we establish a formal
// contract the compiler can check arguments against at link time rather
// than leaving mismatches to surface during evaluation. The standard
// kind set ships embedded; hosts may load their own manifest
// directories instead.
package catalog
