package sqlinline

const QInsertUsageEvent = `--sql 6cceeada-e959-412c-be03-9d59b91e3f4d
insert into usage_events(id, account_id, event_type, direction, success, latency_ms, created_at, properties)
values (gen_random_uuid(), nullif($1::text, '')::uuid, $2::text, $3::text, $4::boolean, $5::int, now(), coalesce($6::jsonb, '{}'::jsonb));
`
