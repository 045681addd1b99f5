// Package yamlcfg provides the YAML implementation of the config.Loader
// interface. A definition file lists ops under a top-level `ops` key:
//
//	ops:
//	  - name: matmul
//	    type_params: [T, TACCUM]
//	    specializations:
//	      - {T: f32, TACCUM: f32}
//	      - {T: i8, TACCUM: i32}
//
// Binding values use the same type syntax as HCL files and are parsed into
// HCL expressions positioned at their YAML source location.
package yamlcfg
