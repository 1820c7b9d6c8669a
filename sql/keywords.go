package sql

// MaxKeywordLen is the length of the longest reserved keyword
// ("CURRENT_TIMESTAMP"), and the size of the scratch buffer a Splitter
// case-folds an identifier candidate into before a keyword-table lookup.
const MaxKeywordLen = 17

// keywordTable is the SQLite reserved-keyword list. TEMP and TEMPORARY both
// map to Temp; every other entry maps to a distinct Kind sharing its name.
var keywordTable = []struct {
	text string
	kind Kind
}{
	{"ABORT", Abort},
	{"ACTION", Action},
	{"ADD", Add},
	{"AFTER", After},
	{"ALL", All},
	{"ALTER", Alter},
	{"ALWAYS", Always},
	{"ANALYZE", Analyze},
	{"AND", And},
	{"AS", As},
	{"ASC", Asc},
	{"ATTACH", Attach},
	{"AUTOINCREMENT", Autoincrement},
	{"BEFORE", Before},
	{"BEGIN", Begin},
	{"BETWEEN", Between},
	{"BY", By},
	{"CASCADE", Cascade},
	{"CASE", Case},
	{"CAST", Cast},
	{"CHECK", Check},
	{"COLLATE", Collate},
	{"COLUMN", Column},
	{"COMMIT", Commit},
	{"CONFLICT", Conflict},
	{"CONSTRAINT", Constraint},
	{"CREATE", Create},
	{"CROSS", Cross},
	{"CURRENT", Current},
	{"CURRENT_DATE", CurrentDate},
	{"CURRENT_TIME", CurrentTime},
	{"CURRENT_TIMESTAMP", CurrentTimestamp},
	{"DATABASE", Database},
	{"DEFAULT", Default},
	{"DEFERRABLE", Deferrable},
	{"DEFERRED", Deferred},
	{"DELETE", Delete},
	{"DESC", Desc},
	{"DETACH", Detach},
	{"DISTINCT", Distinct},
	{"DO", Do},
	{"DROP", Drop},
	{"EACH", Each},
	{"ELSE", Else},
	{"END", End},
	{"ESCAPE", Escape},
	{"EXCEPT", Except},
	{"EXCLUDE", Exclude},
	{"EXCLUSIVE", Exclusive},
	{"EXISTS", Exists},
	{"EXPLAIN", Explain},
	{"FAIL", Fail},
	{"FILTER", Filter},
	{"FIRST", First},
	{"FOLLOWING", Following},
	{"FOR", For},
	{"FOREIGN", Foreign},
	{"FROM", From},
	{"FULL", Full},
	{"GENERATED", Generated},
	{"GLOB", Glob},
	{"GROUP", Group},
	{"GROUPS", Groups},
	{"HAVING", Having},
	{"IF", If},
	{"IGNORE", Ignore},
	{"IMMEDIATE", Immediate},
	{"IN", In},
	{"INDEX", Index},
	{"INDEXED", Indexed},
	{"INITIALLY", Initially},
	{"INNER", Inner},
	{"INSERT", Insert},
	{"INSTEAD", Instead},
	{"INTERSECT", Intersect},
	{"INTO", Into},
	{"IS", Is},
	{"ISNULL", Isnull},
	{"JOIN", Join},
	{"KEY", Key},
	{"LAST", Last},
	{"LEFT", Left},
	{"LIKE", Like},
	{"LIMIT", Limit},
	{"MATCH", Match},
	{"MATERIALIZED", Materialized},
	{"NATURAL", Natural},
	{"NO", No},
	{"NOT", Not},
	{"NOTHING", Nothing},
	{"NOTNULL", Notnull},
	{"NULL", Null},
	{"NULLS", Nulls},
	{"OF", Of},
	{"OFFSET", Offset},
	{"ON", On},
	{"OR", Or},
	{"ORDER", Order},
	{"OTHERS", Others},
	{"OUTER", Outer},
	{"OVER", Over},
	{"PARTITION", Partition},
	{"PLAN", Plan},
	{"PRAGMA", Pragma},
	{"PRECEDING", Preceding},
	{"PRIMARY", Primary},
	{"QUERY", Query},
	{"RAISE", Raise},
	{"RANGE", Range},
	{"RECURSIVE", Recursive},
	{"REFERENCES", References},
	{"REGEXP", Regexp},
	{"REINDEX", Reindex},
	{"RELEASE", Release},
	{"RENAME", Rename},
	{"REPLACE", Replace},
	{"RESTRICT", Restrict},
	{"RETURNING", Returning},
	{"RIGHT", Right},
	{"ROLLBACK", Rollback},
	{"ROW", Row},
	{"ROWS", Rows},
	{"SAVEPOINT", Savepoint},
	{"SELECT", Select},
	{"SET", Set},
	{"TABLE", Table},
	{"TEMP", Temp},
	{"TEMPORARY", Temp},
	{"THEN", Then},
	{"TIES", Ties},
	{"TO", To},
	{"TRANSACTION", Transaction},
	{"TRIGGER", Trigger},
	{"UNBOUNDED", Unbounded},
	{"UNION", Union},
	{"UNIQUE", Unique},
	{"UPDATE", Update},
	{"USING", Using},
	{"VACUUM", Vacuum},
	{"VALUES", Values},
	{"VIEW", View},
	{"VIRTUAL", Virtual},
	{"WHEN", When},
	{"WHERE", Where},
	{"WINDOW", Window},
	{"WITH", With},
	{"WITHOUT", Without},
}

// keywordKind and kindName are built once at package init from
// keywordTable: a compile-time-defined, case-insensitive mapping between
// keyword text (always looked up upper-cased) and Kind, and its inverse for
// Kind.String(). Building both from one literal table keeps them from
// drifting apart the way two independently maintained switches would.
var (
	keywordKind = make(map[string]Kind, len(keywordTable))
	kindName    = make(map[Kind]string, len(keywordTable))
)

func init() {
	for _, e := range keywordTable {
		keywordKind[e.text] = e.kind
		if _, ok := kindName[e.kind]; !ok {
			// Render the Go constant's name: "CURRENT_DATE" -> "CurrentDate".
			name := make([]byte, 0, len(e.text))
			upper := true
			for i := 0; i < len(e.text); i++ {
				c := e.text[i]
				if c == '_' {
					upper = true
					continue
				}
				if !upper && c >= 'A' && c <= 'Z' {
					c += 'a' - 'A'
				}
				upper = false
				name = append(name, c)
			}
			kindName[e.kind] = string(name)
		}
	}
}

// lookupKeyword reports the Kind for an upper-cased, ASCII keyword
// candidate of length 2..MaxKeywordLen. Callers are expected to have
// already folded the candidate to upper-case in a scratch buffer.
func lookupKeyword(upper []byte) (Kind, bool) {
	k, ok := keywordKind[string(upper)]
	return k, ok
}
