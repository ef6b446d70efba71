// Package relocate moves a project directory into the ghq root.
//
// A move has two phases. [Mover.Plan] validates everything and computes
// source and target without touching the filesystem:
//
//  1. make the source absolute and require it to be an existing directory
//  2. refuse to move the directory holding the running executable
//  3. pick the remote: explicit > detected > unknown/<dir> (force only)
//  4. look up the workspace root and refuse to move the root or a parent of it
//  5. resolve the remote to <root>/<host>/<path...>
//  6. refuse a target whose parent is the source itself
//
// [Mover.Execute] then creates the target's parent directories, refuses an
// existing target and renames the source. A failed rename may leave the
// freshly created parent directories behind; they are not removed.
//
// External collaborators (git, ghq, the filesystem) are reached through the
// [RemoteDetector], [RootFinder] and [Filesystem] interfaces.
package relocate
