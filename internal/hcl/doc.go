// Package hcl provides the HCL implementation of the config.Loader interface.
// It is responsible for parsing `.hcl` definition files and translating their
// `op` blocks into the format-agnostic config model.
//
// A definition file looks like:
//
//	op "matmul" {
//	  description = "Matrix multiplication"
//	  type_params = ["T", "TACCUM"]
//
//	  specialize {
//	    T      = f32
//	    TACCUM = f32
//	  }
//	}
//
// Binding values are kept as unevaluated type expressions; they are resolved
// to IR types later by the builder.
package hcl
