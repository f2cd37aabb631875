// Package xmath collects the small numeric helpers ExactSumSweep and
// HyperBall share: filtered argmax/argmin over a score slice with an
// independent tie-break slice, and Kahan-compensated summation.
package xmath
