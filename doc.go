// Package assign solves the assignment problem: given an N×N matrix of
// non-negative profit values, find a one-to-one mapping from row indices to
// column indices that maximizes the sum of the selected entries.
//
// Five interchangeable solvers are provided — JonkerVolgenant (the default),
// BellmanFord, Classic, KuhnMunkres and BruteForce — at different points on
// the complexity curve. They are cross-validated against each other: on the
// same matrix every solver reports the same total score, though ties in the
// optimum may be broken differently.
//
// A small domain layer on top, Score and BuildMatrix, derives a profit
// matrix from driver names and shipment addresses; Assign composes the two
// into the single operation most callers need.
package assign
