package help

const ColdstartYAML = `# wordlist-builder Quick Start

pipelines:
  import: "JSON word -> probability map to one WORD<TAB>per-million file (5 decimals)"
  split: "Tab-separated lexical database to one WORD<TAB>FREQ file per word length (3 decimals)"

defaults:
  import:
    input: words-english.json
    output: words-5-english.txt
  split:
    input: Lexique.tsv
    output_pattern: words-%d.txt
    lengths: "4-12"

commands:
  import: |
    wordlist-builder import
    wordlist-builder import --input words-english.json --output words-5-english.txt

  split: |
    wordlist-builder split
    wordlist-builder split --min-length 5 --max-length 8 --output-dir data

  verify: |
    # rows the game would skip (non-ASCII letters such as Œ, ß upper-cased to SS)
    wordlist-builder verify --dir data

  summary: |
    wordlist-builder --summary split

  ledger: |
    # runs are only recorded when a ledger is named
    wordlist-builder --db wordlist-builder.db split
    wordlist-builder --db wordlist-builder.db --summary split

  history: |
    wordlist-builder runs
    wordlist-builder --db data/runs.db runs show 3

config_file: |
  # wordlist.yaml (optional, flags win)
  db: wordlist-builder.db
  split:
    input: data/Lexique.tsv
    output_dir: data

notes:
  - "Accents are stripped and words upper-cased, so accented and plain forms share one entry"
  - "A repeated word is averaged with its last stored value only, then floored at 0.005"
  - "Nothing is written to the working directory besides the outputs unless --db (or db in the config) is set"
  - "runs and runs show read wordlist-builder.db when no --db is given"
  - "Re-running on unchanged input gives byte-identical files; the ledger reports unchanged_since_run"
`
