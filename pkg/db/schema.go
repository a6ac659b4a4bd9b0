package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Runs: one row per pipeline invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_uuid TEXT NOT NULL UNIQUE,
    pipeline TEXT NOT NULL,          -- import, split
    input_path TEXT NOT NULL,
    input_hash TEXT NOT NULL,
    entry_count INTEGER DEFAULT 0,
    status TEXT NOT NULL,            -- running, success, failed
    error_message TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    finished_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_runs_input ON runs(pipeline, input_hash);

-- Run outputs: every file a run wrote
CREATE TABLE IF NOT EXISTS run_outputs (
    output_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    file_path TEXT NOT NULL,
    content_hash TEXT NOT NULL,
    line_count INTEGER NOT NULL,
    size_bytes INTEGER NOT NULL,
    bucket_length INTEGER,           -- NULL for single-file pipelines
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, file_path)
);

CREATE INDEX IF NOT EXISTS idx_run_outputs_run ON run_outputs(run_id);
`
