package dbal

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

import "github.com/garyfub/madlibport/mainmem"

// Defaultsettings for the full allocation stack. mainmem context
// settings are nested under the "mainmem." prefix, refer to
// mainmem.Defaultsettings for them.
//
// "capacity.function" (int64, default: freeRAM / 2)
//      Capacity of the function memory context.
//
// "capacity.aggregate" (int64, default: freeRAM / 2)
//      Capacity of the aggregate memory context.
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	setts := s.Settings{
		"capacity.function":  int64(free / 2),
		"capacity.aggregate": int64(free / 2),
	}
	return setts.Mixin(mainmem.Defaultsettings().AddPrefix("mainmem."))
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
