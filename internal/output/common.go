package output

// TSVHeader is the canonical header row for TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source_file\tsequence_id\tlength\ta\tc\tg\tt"
