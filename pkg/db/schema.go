package db

const schema = `
CREATE TABLE runs (
    run_id              INTEGER PRIMARY KEY AUTOINCREMENT,
    url                 TEXT NOT NULL,
    fetched_at          TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    from_cache          INTEGER NOT NULL DEFAULT 0,
    language            TEXT,
    language_confidence REAL,
    token_count         INTEGER NOT NULL DEFAULT 0,
    distinct_words      INTEGER NOT NULL DEFAULT 0,
    duration_ms         INTEGER NOT NULL DEFAULT 0,
    chart_path          TEXT,
    status              TEXT NOT NULL DEFAULT 'success',
    error               TEXT
);

CREATE TABLE top_words (
    run_id INTEGER NOT NULL,
    rank   INTEGER NOT NULL,
    word   TEXT NOT NULL,
    count  INTEGER NOT NULL,
    PRIMARY KEY (run_id, rank),
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX idx_runs_url ON runs(url);
CREATE INDEX idx_runs_fetched_at ON runs(fetched_at);
`
