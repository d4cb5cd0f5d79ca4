package sigchain

// sigRTMin glibc 下的第一个实时信号
const sigRTMin = 34
