package mysql

const insertListingsPrefix = `INSERT INTO listings
  (id, address, city, state, zip_code, monthly_rent, bedrooms,
   agent_name, agent_phone, agent_email, languages_spoken,
   section8_accepted, hud_approved, low_income_eligible, nearby_transit,
   utilities_included, pets_allowed, accessibility_features, income_limit_percent_ami)
VALUES `

const insertListingsOnDup = ` ON DUPLICATE KEY UPDATE
  address                  = VALUES(address),
  city                     = VALUES(city),
  state                    = VALUES(state),
  zip_code                 = VALUES(zip_code),
  monthly_rent             = VALUES(monthly_rent),
  bedrooms                 = VALUES(bedrooms),
  agent_name               = VALUES(agent_name),
  agent_phone              = VALUES(agent_phone),
  agent_email              = VALUES(agent_email),
  languages_spoken         = VALUES(languages_spoken),
  section8_accepted        = VALUES(section8_accepted),
  hud_approved             = VALUES(hud_approved),
  low_income_eligible      = VALUES(low_income_eligible),
  nearby_transit           = VALUES(nearby_transit),
  utilities_included       = VALUES(utilities_included),
  pets_allowed             = VALUES(pets_allowed),
  accessibility_features   = VALUES(accessibility_features),
  income_limit_percent_ami = VALUES(income_limit_percent_ami),
  updated_at               = CURRENT_TIMESTAMP
`

const selectListingColumns = `
  id, address, city, state, zip_code, monthly_rent, bedrooms,
  agent_name, agent_phone, agent_email, languages_spoken,
  section8_accepted, hud_approved, low_income_eligible, nearby_transit,
  utilities_included, pets_allowed, accessibility_features, income_limit_percent_ami`

const getListingSQL = `SELECT` + selectListingColumns + `
FROM listings
WHERE id = ?`

const loadAllSQL = `SELECT` + selectListingColumns + `
FROM listings
ORDER BY id`
