// Package hcl provides the HCL implementation of config.Loader and an HCL
// writer for schedules. It is responsible for file parsing, HCL-to-model
// translation and CTY-to-Go value conversion.
//
// A task file looks like:
//
//	task "Write plan" {
//	  estimated_hours = 2
//	  due_date        = "2025-03-01"
//	  depends_on      = ["Kickoff"]
//	}
//
// Every attribute is optional. Unknown top-level attributes and blocks are
// tolerated, so files produced by WritePlan load back cleanly.
package hcl
