package sqlinline

const QUpsertAccount = `--sql 1bbdf5b2-3012-483b-bc38-3d109d9d3fc2
insert into accounts (id, email, translation_count, has_paid, created_at, updated_at)
values ($1::uuid, $2::text, 0, false, now(), now())
on conflict (id) do update set
    email = excluded.email,
    updated_at = now()
returning id, email, translation_count, has_paid, stripe_customer_id, subscription_id, created_at, updated_at;
`

const QSelectAccountByID = `--sql ef71e6ed-b728-4194-bbb8-794961889315
select id, email, translation_count, has_paid, stripe_customer_id, subscription_id, created_at, updated_at
from accounts
where id = $1::uuid
limit 1;
`

const QSelectAccountByEmail = `--sql 24c647c7-c2c3-4da6-83ca-d59281fed75f
select id, email, translation_count, has_paid, stripe_customer_id, subscription_id, created_at, updated_at
from accounts
where email = $1::text
limit 1;
`

// QIncrementTranslationCount bumps the free-tier counter in a single
// statement. Paid accounts are excluded in the predicate so their counters
// stay frozen no matter who calls this.
const QIncrementTranslationCount = `--sql 2a508a4e-2480-45bd-a0df-54928d2347e8
update accounts
set translation_count = translation_count + 1,
    updated_at = now()
where id = $1::uuid
  and has_paid = false
returning translation_count;
`

const QActivateSubscription = `--sql 2fea8f35-59c8-47e6-935a-f20c6585883a
update accounts
set has_paid = true,
    stripe_customer_id = $2::text,
    subscription_id = $3::text,
    updated_at = now()
where id = $1::uuid;
`

// QCancelSubscription matches by subscription id because the cancellation
// event does not carry the original account metadata.
const QCancelSubscription = `--sql ea59d415-955f-41b5-86cb-abef1552545f
update accounts
set has_paid = false,
    subscription_id = null,
    updated_at = now()
where subscription_id = $1::text;
`

const QResetTranslationCount = `--sql 30f76c64-3e8e-474d-8739-22e9c5594b56
update accounts
set translation_count = 0,
    updated_at = now()
where id = $1::uuid;
`

const QSetUnlimited = `--sql 58ccd483-98b1-4f4c-b604-8243e45d26ec
update accounts
set has_paid = $2::boolean,
    updated_at = now()
where id = $1::uuid
returning id, email, translation_count, has_paid;
`
