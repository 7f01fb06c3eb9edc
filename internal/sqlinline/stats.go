package sqlinline

const QStatsSummary = `--sql 25582492-1f1e-444a-a9fe-2f427b86cc75
select
    (select count(*) from accounts) as total_accounts,
    (select count(*) from accounts where has_paid) as paid_accounts,
    (select count(*) from usage_events where event_type = 'TRANSLATE' and success) as translations_total,
    (select count(*) from usage_events where event_type = 'TRANSLATE' and not success) as translations_failed,
    (select count(*) from usage_events where event_type = 'TRANSLATE' and success and created_at > now() - interval '24 hours') as translations_last_24h,
    (select count(*) from usage_events where event_type = 'VOICE_CAPTURE' and success) as voice_captures_total;
`
