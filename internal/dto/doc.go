// Package dto holds the transfer records exchanged with the structured
// codecs.  Import records carry their own field validation; export records
// are the shapes the export pipeline encodes.
package dto
