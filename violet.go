// Package violet is an extended standard library for Go: sum types,
// lazy pull-based iteration, reference-counted ownership, and a set of
// thin platform collaborators built on top of them.
//
// The module is organised as small, focused packages:
//
//   - [github.com/Noelware/violet-go/option]: Option[T], a value that is
//     either present (Some) or absent (None).
//   - [github.com/Noelware/violet-go/result]: Result[T, E], the outcome of
//     a fallible operation; exactly one of the value or the error is live.
//   - [github.com/Noelware/violet-go/rc]: Rc/Weak and Arc/AWeak,
//     reference-counted shared ownership with strong and weak handles.
//   - [github.com/Noelware/violet-go/iter]: lazy iterators with composable
//     adapters (Map, Filter, Take, Skip, Peekable, Enumerate, ...) and
//     consuming combinators (Fold, Count, Find, Collect, ...).
//   - [github.com/Noelware/violet-go/vio]: the I/O error taxonomy and the
//     Readable/Writable capabilities shared by the collaborators.
//   - [github.com/Noelware/violet-go/fs]: directory iteration producing
//     Result-valued entries with lazily computed metadata.
//   - [github.com/Noelware/violet-go/subprocess]: a child-process launcher
//     whose standard streams satisfy the vio capabilities.
//   - [github.com/Noelware/violet-go/ulid]: ULID generation and parsing.
//   - [github.com/Noelware/violet-go/term]: terminal detection and styled
//     output that degrades gracefully.
//
// The core packages (option, result, rc, iter) are pure values with no
// I/O and no logging. Fallible operations return Result; lazy pulls
// return Option. Programmer misuse, such as unwrapping a None or using a
// released handle, panics with a caller-annotated diagnostic rather than
// returning an error.
package violet
