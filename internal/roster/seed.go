package roster

// MasterID is the id of the protected seed user.
const MasterID = "rafael-master"

// DefaultSeed is the roster the console starts with when the config file
// names no users.
func DefaultSeed() []User {
	return []User{
		{
			ID:    MasterID,
			Name:  "RafaelMaster",
			Email: "rafaeladdad@gmail.com",
			Phone: "(11) 99999-9999",
			Tier:  TierMaster,
		},
		{
			ID:    "rafael-teste",
			Name:  "Rafael Teste",
			Email: "rsacreditos@gmail.com",
			Phone: "(11) 98888-8888",
			Tier:  TierStandard,
		},
		{
			ID:    "beatriz-ribeiro",
			Name:  "Beatriz Ribeiro",
			Email: "arkrafaaddad@gmail.com",
			Phone: "(11) 97777-7777",
			Tier:  TierStandard,
		},
	}
}
