// Package pipeline wires the OCR decoder into three explicit stages:
//
//  1. Acquire: a Source yields the raw input text.
//  2. Compute: a Processor segments, decodes and classifies accounts. This
//     stage is pure and never touches I/O.
//  3. Persist: a Sink appends one result line at a time.
//
// Stages exchange plain data, so the compute stage can be tested without
// any files.
package pipeline
