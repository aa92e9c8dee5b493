/*
Package umd provides the semantic model of UML style diagrams.

Elements form an ownership forest where each element refers weakly to
its owner by ID. Owned elements are always derived by scanning the
model, never stored, so the two directions cannot drift apart.

Which element may own which is decided by the Nestings table, e.g. a
package may own types, packages and diagrams and a class may own
nested classifiers. Subpackages connect and drop keep diagrams in sync
with this model.
*/
package umd
