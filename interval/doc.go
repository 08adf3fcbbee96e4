/*Package interval indexes a fixed batch of half-open coordinate intervals,
  each paired with an opaque value, and answers "which entries overlap this
  point or interval" queries.  The concrete index is a centered interval
  tree: construction recursively partitions the entries around per-node
  center coordinates, and entries straddling a center are kept at that node
  in two sort orders so query scans can stop early.
  Indexes are built once, are immutable afterwards, and support any number
  of concurrent readers.  Coordinates are generic over the integer types;
  values may be anything.
*/
package interval
