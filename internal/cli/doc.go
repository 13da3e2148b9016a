// Package cli implements the toolbox commands on top of the services.
//
// Each exported App method is one tool:
//   - GroupDemo: group the demo pairs and print them
//   - GenerateCSV: write the synthetic exchange file
//   - InsertMany: load the exchange file into the editorial table
//   - InsertOne: prompt for a name and email and insert them
//   - MemProbe: measure memory and CPU around a sum of squares
//
// User-facing messages go to the App's output; structured logs go to stderr.
// Commands print "Error: ..." for failures and also return the error so the
// caller can exit non-zero.
package cli
