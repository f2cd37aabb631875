// Package hyperball implements the HyperBall diffusion algorithm for
// approximate neighbourhood-function computation and geometric centralities
// over large directed graphs. It drives an iterative
// register-merging process over two banks of hyperloglog.RegisterArray
// counters, adaptively switching between standard, systolic, pre-local and
// local scheduling modes as the fraction of still-changing counters shrinks.
package hyperball
