package store

const createFitTable = `
CREATE TABLE IF NOT EXISTS fits (
  id integer primary key autoincrement,
  name varchar not null,
  kind varchar not null,
  source varchar,
  time datetime,
  p real,
  n int,
  mean real,
  stdev real,
  samples int
)`

const insertStmt = `
INSERT INTO fits (name, kind, source, time, p, n, mean, stdev, samples)
VALUES (:name, :kind, :source, :time, :p, :n, :mean, :stdev, :samples)
`

const selectFits = `
SELECT id, name, kind, source, time, p, n, mean, stdev, samples
  FROM fits
 ORDER BY id
`

const selectFitsByKind = `
SELECT id, name, kind, source, time, p, n, mean, stdev, samples
  FROM fits
 WHERE kind = ?
 ORDER BY id
`
