// Package rubriclist renders the site-wide listing of grading rubrics: one
// row per rubric with its name, last-modified date, activity type, activity,
// status, and course.
//
// # Formatting
//
// A [Formatter] turns one [Record] into six display columns. It is built with
// the two services it depends on, a [Strings] lookup for every label and a
// [Linker] for hyperlinks:
//
//	cat, _ := rubriclist.LoadCatalog("en")
//	f := rubriclist.NewFormatter(cat, rubriclist.SiteLinker{Root: "https://lms.example.edu"})
//	name, err := f.Name(rec)
//
// In export mode ([Exporting]) every column is plain text. Otherwise the
// rubric, activity, and course columns are anchors pointing at the grading
// area, the activity, and the course.
//
// # Module Types
//
// The activity column depends on the record's module type. A [Registry] maps
// each type to its view path and the record fields holding its id and name.
// [DefaultRegistry] knows assign and forum; other types are added with
// [Registry.Register] and read their name from [Record.Extra] via [ExtraName].
//
// # Listings
//
// A [Listing] feeds records from a source (see [Fetch] and [Scan]) through a
// Formatter into a [render.Format]. HTML is the only interactive format; all
// others are downloads. A record whose cells cannot be formatted is still
// written, with the failing cells replaced by the localised error label, and
// [Listing.Write] reports it in a [RowErrors] once the listing is complete.
// An empty listing still writes its title and header, with a localised
// "nothing to display" notice in HTML and terminal tables.
//
// # Errors
//
//   - [ErrUnknownStatus]: status is neither draft nor ready
//   - [ErrUnknownModuleType]: no plugin name for the module type
//   - [ErrUnsupportedModuleType]: module type not in the registry
//   - [ErrMissingString]: string id not in the catalog
//   - [ErrUnknownLanguage]: language tag cannot be parsed
package rubriclist
