package db

// hireFromJobBoardFunction accepts an application and creates the matching
// employment record in one transaction. A missing application raises
// no_data_found (SQLSTATE P0002); false means it is rejected or already hired.
const hireFromJobBoardFunction = `
CREATE OR REPLACE FUNCTION hire_from_job_board(
	p_application_id text,
	p_hire_type text,
	p_venue_id text,
	p_rate numeric,
	p_extra jsonb
) RETURNS boolean
LANGUAGE plpgsql
AS $$
DECLARE
	app record;
BEGIN
	SELECT a.id, a.applicant_id, a.status, a.hired_as, j.title, p.full_name, p.email
	  INTO app
	  FROM staff_applications a
	  LEFT JOIN job_board_postings j ON j.id = a.job_id
	  LEFT JOIN profiles p ON p.id = a.applicant_id
	 WHERE a.id = p_application_id
	   FOR UPDATE OF a;

	IF NOT FOUND THEN
		RAISE EXCEPTION 'application % not found', p_application_id USING ERRCODE = 'no_data_found';
	END IF;

	IF app.status = 'rejected' OR coalesce(app.hired_as, '') <> '' THEN
		RETURN false;
	END IF;

	UPDATE staff_applications
	   SET status = 'accepted', hired_as = p_hire_type, hire_date = now(), final_rate = p_rate, updated_at = now()
	 WHERE id = p_application_id;

	IF p_hire_type = 'staff' THEN
		INSERT INTO venue_team_members (id, created_at, updated_at, venue_id, user_id, application_id, name, email,
			role, employment_type, status, hourly_rate, permissions, schedule, hire_date)
		VALUES (gen_random_uuid()::text, now(), now(), p_venue_id, app.applicant_id, app.id,
			coalesce(app.full_name, ''), coalesce(app.email, ''),
			coalesce(nullif(p_extra->>'role', ''), app.title, ''), 'full_time', 'active', p_rate,
			coalesce(p_extra->'permissions', '{}'::jsonb), coalesce(p_extra->'schedule', '{}'::jsonb), now());
	ELSIF p_hire_type = 'crew' THEN
		INSERT INTO venue_crew_members (id, created_at, updated_at, venue_id, user_id, application_id, name, email,
			specialty, skills, certifications, day_rate, rate_type, availability, rating, completed_events)
		VALUES (gen_random_uuid()::text, now(), now(), p_venue_id, app.applicant_id, app.id,
			coalesce(app.full_name, ''), coalesce(app.email, ''),
			coalesce(nullif(p_extra->>'specialty', ''), app.title, ''),
			coalesce(p_extra->'skills', '[]'::jsonb), coalesce(p_extra->'certifications', '[]'::jsonb),
			p_rate, 'daily', coalesce(nullif(p_extra->>'availability', ''), 'available'), 0, 0);
	ELSIF p_hire_type = 'team' THEN
		INSERT INTO venue_team_contractors (id, created_at, updated_at, venue_id, user_id, application_id, name, email,
			role, contract_type, specialization, rate, rate_type, active_contracts, completed_contracts, rating)
		VALUES (gen_random_uuid()::text, now(), now(), p_venue_id, app.applicant_id, app.id,
			coalesce(app.full_name, ''), coalesce(app.email, ''),
			coalesce(nullif(p_extra->>'role', ''), app.title, ''),
			coalesce(nullif(p_extra->>'contract_type', ''), 'freelance'),
			coalesce(p_extra->'specialization', '[]'::jsonb), p_rate, 'project', 0, 0, 0);
	ELSE
		RAISE EXCEPTION 'unknown hire type %', p_hire_type;
	END IF;

	RETURN true;
END;
$$;`
