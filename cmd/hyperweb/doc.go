// Command hyperweb is the CLI driver for this module's graph analytics: an
// operation selector over {scc, diameter, hyperball}, taking a graph
// basename path and, for hyperball, an optional --log2m flag. The core
// packages never load graphs or log; this driver is where those
// collaborator responsibilities live.
package main
