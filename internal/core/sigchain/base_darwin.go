package sigchain

// sigRTMin 无实时信号，取 NSIG
const sigRTMin = 32
